package config

import "os"

type Config struct {
	Addr        string
	DatabaseURL string
	JWTSecret   string
	// DataDir is where the locally persisted cart and identity live.
	DataDir string
	// Merchant WhatsApp numbers. The storefront uses a different number for
	// bulk checkout and single-item buy-now.
	CheckoutWhatsApp string
	BuyNowWhatsApp   string
}

func Load() Config {
	return Config{
		Addr:             getenv("WOODCRAFT_ADDR", ":8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		DataDir:          getenv("WOODCRAFT_DATA_DIR", "./data"),
		CheckoutWhatsApp: getenv("WHATSAPP_CHECKOUT_NUMBER", "94768919013"),
		BuyNowWhatsApp:   getenv("WHATSAPP_BUYNOW_NUMBER", "94704613204"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
