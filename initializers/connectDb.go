package initializers

import (
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectToDB opens the MySQL connection for deployments that run with a
// persistent store. Callers decide whether a DSN is configured at all;
// the in-memory store is used when it is not.
func ConnectToDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(mysql.Open(dsn), &gorm.Config{})
}
