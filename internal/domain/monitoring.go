package domain

import "time"

// PostgresStatus is the health snapshot of the primary database.
type PostgresStatus struct {
	Status         string  `json:"status"`
	Connections    int     `json:"connections"`
	MaxConnections int     `json:"max_connections"`
	DatabaseSize   int64   `json:"database_size"`
	ResponseTime   float64 `json:"response_time"`
}

// ClickHouseStatus is the health snapshot of one analytics database.
type ClickHouseStatus struct {
	Status       string  `json:"status"`
	DatabaseSize int64   `json:"database_size"`
	TableCount   int     `json:"table_count"`
	RowCount     int64   `json:"row_count"`
	ResponseTime float64 `json:"response_time"`
}

// RedisStatus is the health snapshot of the cache tier.
type RedisStatus struct {
	Status           string  `json:"status"`
	UsedMemory       int64   `json:"used_memory"`
	MaxMemory        int64   `json:"max_memory"`
	ConnectedClients int     `json:"connected_clients"`
	ResponseTime     float64 `json:"response_time"`
}

// DatabaseStatus aggregates the health of every database tier.
type DatabaseStatus struct {
	PostgreSQL PostgresStatus              `json:"postgresql"`
	ClickHouse map[string]ClickHouseStatus `json:"clickhouse"`
	Redis      RedisStatus                 `json:"redis"`
}

// Overview is the dashboard landing aggregate.
type Overview struct {
	TotalOrganizations int               `json:"total_organizations"`
	TotalUsers         int               `json:"total_users"`
	TotalSubscriptions int               `json:"total_subscriptions"`
	DatabaseStatus     map[string]string `json:"database_status"`
	SystemHealth       map[string]string `json:"system_health"`
	RecentMetrics      []RecentMetric    `json:"recent_metrics"`
}

// RecentMetric is one data point on the overview.
type RecentMetric struct {
	DatabaseName string  `json:"database_name"`
	MetricType   string  `json:"metric_type"`
	MetricValue  float64 `json:"metric_value"`
	Unit         string  `json:"unit"`
	Timestamp    int64   `json:"timestamp"`
}

// ResourceMetric is a collected measurement for one database.
type ResourceMetric struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id,omitempty"`
	DatabaseType   string    `json:"database_type"`
	DatabaseName   string    `json:"database_name"`
	MetricType     string    `json:"metric_type"`
	MetricName     string    `json:"metric_name"`
	MetricValue    float64   `json:"metric_value"`
	Unit           string    `json:"unit,omitempty"`
	Tags           string    `json:"tags,omitempty"`
	CollectedAt    time.Time `json:"collected_at"`
	CreatedAt      time.Time `json:"created_at"`
}

// MetricPoint is one sample in a metrics history series.
type MetricPoint struct {
	Timestamp  int64   `json:"timestamp"`
	Value      float64 `json:"value"`
	MetricName string  `json:"metric_name"`
	Unit       string  `json:"unit"`
}

// MetricsHistory is a time series for one database metric.
type MetricsHistory struct {
	DatabaseType string        `json:"database_type"`
	DatabaseName string        `json:"database_name"`
	MetricType   string        `json:"metric_type"`
	StartTime    int64         `json:"start_time"`
	EndTime      int64         `json:"end_time"`
	Data         []MetricPoint `json:"data"`
}

// SystemHealth is the recorded health of one platform component.
type SystemHealth struct {
	ID            string    `json:"id"`
	ComponentName string    `json:"component_name"`
	ComponentType string    `json:"component_type"`
	Status        string    `json:"status"`
	ResponseTime  float64   `json:"response_time,omitempty"`
	ErrorMessage  string    `json:"error_message,omitempty"`
	LastCheckedAt time.Time `json:"last_checked_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MonitoringLog is one entry in the platform's monitoring log stream.
type MonitoringLog struct {
	ID             string    `json:"id"`
	LogLevel       string    `json:"log_level"`
	Source         string    `json:"source"`
	Component      string    `json:"component,omitempty"`
	OrganizationID string    `json:"organization_id,omitempty"`
	Message        string    `json:"message"`
	Details        string    `json:"details,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// AlertRule is a configured alerting rule.
type AlertRule struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description,omitempty"`
	RuleType           string    `json:"rule_type"`
	TargetType         string    `json:"target_type"`
	TargetName         string    `json:"target_name,omitempty"`
	MetricName         string    `json:"metric_name"`
	Operator           string    `json:"operator"`
	Threshold          float64   `json:"threshold"`
	Duration           int       `json:"duration"`
	Severity           string    `json:"severity"`
	Enabled            bool      `json:"enabled"`
	NotificationConfig string    `json:"notification_config"`
	CreatedBy          string    `json:"created_by"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
