package redis

type RedisStreamConfig struct {
	RedisAddr     string
	RedisPassword string
	RequestStream string
	ResultStream  string
	Group         string
	ConsumerName  string
	MaxRetries    int
}

func NewRedisStreamConfig(redisAddr string, redisPassword string, requestStream string, resultStream string, group string, consumerName string) *RedisStreamConfig {
	return &RedisStreamConfig{
		RedisAddr:     redisAddr,
		RedisPassword: redisPassword,
		RequestStream: requestStream,
		ResultStream:  resultStream,
		Group:         group,
		ConsumerName:  consumerName,
		MaxRetries:    5,
	}
}
