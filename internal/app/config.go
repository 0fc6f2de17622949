package app

import (
	"strings"

	"github.com/safarnesia/umrah-backend/internal/logger"
	"github.com/safarnesia/umrah-backend/internal/utils"
)

type Config struct {
	Port              string
	AllowOrigins      []string
	InvoiceFetchWidth int
}

func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	origins := utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173", log)
	fetchWidth := utils.GetEnvAsInt("INVOICE_FETCH_WIDTH", 5, log)
	if fetchWidth < 1 {
		log.Warn("INVOICE_FETCH_WIDTH must be positive, using default", "value", fetchWidth)
		fetchWidth = 5
	}
	return Config{
		Port:              port,
		AllowOrigins:      splitOrigins(origins),
		InvoiceFetchWidth: fetchWidth,
	}
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
