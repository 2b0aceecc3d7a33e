package config

import "go.uber.org/zap"

// NewLogger - production логгер при CLOUDZ_ENV=production, иначе development
func (c *Config) NewLogger() (*zap.Logger, error) {
	if c.Production() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
