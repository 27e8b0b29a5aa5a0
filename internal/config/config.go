package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Trading       Trading       `mapstructure:",squash"`
	Automation    Automation    `mapstructure:",squash"`
	ListingSync   ListingSync   `mapstructure:",squash"`
	StaleCheck    StaleCheck    `mapstructure:",squash"`
	OfferCheck    OfferCheck    `mapstructure:",squash"`
	FeedbackCheck FeedbackCheck `mapstructure:",squash"`
	APIKey        string        `mapstructure:"api_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Trading guarda as credenciais e parâmetros da Trading API do marketplace
type Trading struct {
	BaseURL            string `mapstructure:"trading_base_url"`
	SandboxURL         string `mapstructure:"trading_sandbox_url"`
	URL                string `mapstructure:"-"`
	AppID              string `mapstructure:"trading_app_id"`
	DevID              string `mapstructure:"trading_dev_id"`
	CertID             string `mapstructure:"trading_cert_id"`
	Token              string `mapstructure:"trading_token"`
	SiteID             string `mapstructure:"trading_site_id"`
	Environment        string `mapstructure:"trading_env"`
	PageSize           int    `mapstructure:"trading_page_size"`
	RelistDelaySeconds int    `mapstructure:"trading_relist_delay_seconds"`
	CompatibilityLevel string `mapstructure:"trading_compatibility_level"`
	PayPalEmailAddress string `mapstructure:"trading_paypal_email"`
	ListingDuration    string `mapstructure:"trading_listing_duration"`
	DefaultConditionID string `mapstructure:"trading_default_condition_id"`
	DefaultLocation    string `mapstructure:"trading_default_location"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Automation concentra os limiares consumidos pelas regras de automação
type Automation struct {
	StaleNoSaleDays      int     `mapstructure:"stale_no_sale_days"`
	StaleLowTrafficDays  int     `mapstructure:"stale_low_traffic_days"`
	StaleMinViews        int     `mapstructure:"stale_min_views"`
	RelistCooldownDays   int     `mapstructure:"relist_cooldown_days"`
	OfferCooldownDays    int     `mapstructure:"offer_cooldown_days"`
	OfferMinWatchers     int     `mapstructure:"offer_min_watchers"`
	MinViewsForOffer     int     `mapstructure:"min_views_for_offer"`
	OfferDiscountPercent float64 `mapstructure:"offer_discount_percent"`
	FeedbackRequestDays  int     `mapstructure:"feedback_request_days"`
	SoldWindowDays       int     `mapstructure:"sold_window_days"`
}

type ListingSync struct {
	IntervalMinutes     int  `mapstructure:"listing_sync_interval_minutes"`
	SoldIntervalMinutes int  `mapstructure:"sold_sync_interval_minutes"`
	Enabled             bool `mapstructure:"listing_sync_enabled"`
}

type StaleCheck struct {
	CronSchedule string `mapstructure:"stale_check_cron"`
	Enabled      bool   `mapstructure:"stale_check_enabled"`
}

type OfferCheck struct {
	CronSchedule string `mapstructure:"offer_check_cron"`
	Enabled      bool   `mapstructure:"offer_check_enabled"`
}

type FeedbackCheck struct {
	CronSchedule string `mapstructure:"feedback_check_cron"`
	Enabled      bool   `mapstructure:"feedback_check_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/sellerops")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("TRADING_BASE_URL", "https://api.ebay.com/ws/api.dll")
	viper.SetDefault("TRADING_SANDBOX_URL", "https://api.sandbox.ebay.com/ws/api.dll")
	viper.SetDefault("TRADING_APP_ID", "your_app_id")
	viper.SetDefault("TRADING_DEV_ID", "your_dev_id")
	viper.SetDefault("TRADING_CERT_ID", "your_cert_id")
	viper.SetDefault("TRADING_TOKEN", "your_token") // ONLY LOCAL
	viper.SetDefault("TRADING_SITE_ID", "0")
	viper.SetDefault("TRADING_ENV", "production")
	viper.SetDefault("TRADING_PAGE_SIZE", 200)
	viper.SetDefault("TRADING_RELIST_DELAY_SECONDS", 2) // Espera o marketplace processar o EndItem
	viper.SetDefault("TRADING_COMPATIBILITY_LEVEL", "967")
	viper.SetDefault("TRADING_PAYPAL_EMAIL", "")
	viper.SetDefault("TRADING_LISTING_DURATION", "GTC")
	viper.SetDefault("TRADING_DEFAULT_CONDITION_ID", "3000")
	viper.SetDefault("TRADING_DEFAULT_LOCATION", "United States")

	// Limiares das regras de automação
	viper.SetDefault("STALE_NO_SALE_DAYS", 45)     // Sem venda há 45 dias => anúncio parado
	viper.SetDefault("STALE_LOW_TRAFFIC_DAYS", 30) // 30 dias com pouca visita => anúncio parado
	viper.SetDefault("STALE_MIN_VIEWS", 10)        // Abaixo disso conta como pouca visita
	viper.SetDefault("RELIST_COOLDOWN_DAYS", 7)    // Não relistar o mesmo item duas vezes na semana
	viper.SetDefault("OFFER_COOLDOWN_DAYS", 14)    // Intervalo mínimo entre ofertas do mesmo item
	viper.SetDefault("OFFER_MIN_WATCHERS", 2)      // Observadores mínimos para o lote de ofertas
	viper.SetDefault("MIN_VIEWS_FOR_OFFER", 5)     // Visualizações mínimas para oferta manual
	viper.SetDefault("OFFER_DISCOUNT_PERCENT", 10) // Desconto padrão das ofertas
	viper.SetDefault("FEEDBACK_REQUEST_DAYS", 7)   // Dias após a venda para pedir feedback
	viper.SetDefault("SOLD_WINDOW_DAYS", 30)       // Janela de sincronização de vendas

	// Agendamentos
	viper.SetDefault("LISTING_SYNC_INTERVAL_MINUTES", 60)
	viper.SetDefault("SOLD_SYNC_INTERVAL_MINUTES", 120)
	viper.SetDefault("LISTING_SYNC_ENABLED", true)
	viper.SetDefault("STALE_CHECK_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("STALE_CHECK_ENABLED", true)
	viper.SetDefault("OFFER_CHECK_CRON", "0 10 * * *") // Todos os dias às 10h
	viper.SetDefault("OFFER_CHECK_ENABLED", true)
	viper.SetDefault("FEEDBACK_CHECK_CRON", "0 15 * * *") // Todos os dias às 15h
	viper.SetDefault("FEEDBACK_CHECK_ENABLED", true)

	viper.SetDefault("API_KEY", "")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	// A URL efetiva da Trading API depende do ambiente configurado
	if config.Trading.Environment == "production" {
		config.Trading.URL = config.Trading.BaseURL
	} else {
		config.Trading.URL = config.Trading.SandboxURL
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Validate confere se as credenciais obrigatórias da Trading API foram definidas
func (c *Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"TRADING_APP_ID", c.Trading.AppID},
		{"TRADING_DEV_ID", c.Trading.DevID},
		{"TRADING_CERT_ID", c.Trading.CertID},
		{"TRADING_TOKEN", c.Trading.Token},
	}

	missing := make([]string, 0)
	for _, item := range required {
		if item.value == "" {
			missing = append(missing, item.key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("configuração obrigatória ausente: %v. Verifique seu arquivo .env", missing)
	}

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
