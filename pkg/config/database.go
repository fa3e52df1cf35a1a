package config

import "fmt"

// PostgresDSN builds a libpq connection string.
func (d DatabaseConfig) PostgresDSN() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, sslMode,
	)
	if d.Timezone != "" {
		dsn += " TimeZone=" + d.Timezone
	}
	return dsn
}

// RedisAddr returns host:port for the redis client.
func (r RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
