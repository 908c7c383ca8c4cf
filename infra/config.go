package infra

import "fmt"

const DEFAULT_MAX_CONNECTIONS = 20

type PgConfig struct {
	ConnectionString   string
	Database           string
	Hostname           string
	Password           string
	Port               string
	User               string
	SslMode            string
	MaxPoolConnections int
}

func (config PgConfig) GetConnectionString() string {
	if config.ConnectionString != "" {
		return config.ConnectionString
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Hostname, config.Port, config.User, config.Password, config.Database, config.SslMode)
}

type BlobConfig struct {
	// Bucket urls in gocloud.dev form: s3://..., gs://..., file:///...
	ChurchMediaBucketUrl string
}
