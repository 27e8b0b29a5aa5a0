package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera a chave curta usada como PK nas tabelas do espelho
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 6)
}
