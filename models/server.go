package models

import "time"

// Server is one row of the servers table. Every column except id is nullable,
// so those fields are pointers and a NULL serializes as null.
type Server struct {
	ID             int64      `gorm:"column:id;primaryKey" json:"id"`
	ServerName     *string    `gorm:"column:server_name;size:100" json:"server_name"`
	Status         *string    `gorm:"column:status;size:50" json:"status"`
	IPAddress      *string    `gorm:"column:ipaddress;size:50" json:"ipaddress"`
	RAMUsage       *float64   `gorm:"column:ram_usage" json:"ram_usage"`
	NetworkTraffic *float64   `gorm:"column:network_traffic" json:"network_traffic"`
	CPUUsage       *float64   `gorm:"column:cpu_usage" json:"cpu_usage"`
	DiskUsage      *float64   `gorm:"column:disk_usage" json:"disk_usage"`
	AlertLevel     *string    `gorm:"column:alert_level;size:50" json:"alert_level"`
	CreatedOn      *time.Time `gorm:"column:created_on;default:CURRENT_TIMESTAMP" json:"created_on"`
}

func (Server) TableName() string {
	return "servers"
}
