package config

import (
	"github.com/go-redis/redis/v8"
)

type RedisConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

func NewRedisClient(r RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     r.Addr(),
		Password: r.Password,
		DB:       r.DB,
	})
}
