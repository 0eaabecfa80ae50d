package config

type MongoDBConfigType struct {
	Uri        string `env:"URI"`
	Host       string `env:"HOST"`
	Port       int    `env:"PORT"`
	DBName     string `env:"DB_NAME"`
	Collection string `env:"COLLECTION"`
}
type ConfigType struct {
	LogLevel      string            `env:"LOG_LEVEL" envDefault:"warning"`
	MongoDBConfig MongoDBConfigType `envPrefix:"MONGODB_"`
}
