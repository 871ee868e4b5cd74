package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Backend  AppBackend  `mapstructure:"backend"`
	JWT      AppJWT      `mapstructure:"jwt"`
	Minio    AppMinio    `mapstructure:"minio"`
	RabbitMQ AppRabbitMQ `mapstructure:"rabbitmq"`
}

type App struct {
	Env                         string `mapstructure:"env"`
	Port                        string `mapstructure:"port"`
	Version                     string `mapstructure:"version"`
	Timezone                    string `mapstructure:"timezone"`
	EndpointPrefix              string `mapstructure:"endpoint_prefix"`
	AllowedOrigins              string `mapstructure:"allowed_origins"`
	ShutdownTimeoutInSeconds    int    `mapstructure:"shutdown_timeout_in_seconds"`
	MaxTimeRequestsPerSeconds   int    `mapstructure:"max_time_requests_per_seconds"`
	RequestBodyLimitInMegabyte  int    `mapstructure:"request_body_limit_in_megabyte"`
	SessionExpiredTimeInHours   int    `mapstructure:"session_expired_time_in_hours"`
	SessionCookieSecure         bool   `mapstructure:"session_cookie_secure"`
	ProfileImageMaxUploadSizeMB int64  `mapstructure:"profile_image_max_upload_size_in_mb"`
}

// AppBackend points at the remote REST API every view reads from.
type AppBackend struct {
	BaseUrl                 string  `mapstructure:"base_url"`
	RequestTimeoutInSeconds int     `mapstructure:"request_timeout_in_seconds"`
	MaxRequestsPerSecond    float64 `mapstructure:"max_requests_per_second"`
	Burst                   int     `mapstructure:"burst"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}

type AppMinio struct {
	BucketName                      string `mapstructure:"bucket_name"`
	PreSignedUrlObjectExpiryInHours int    `mapstructure:"pre_signed_url_object_expiry_time_in_hours"`
}

type AppRabbitMQ struct {
	AppointmentExchange string `mapstructure:"appointment_exchange"`
}
