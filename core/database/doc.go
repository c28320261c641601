// Package database manages the MySQL connection used as the catalog's
// persistent store. It wraps GORM with sane pool settings, DSN timeouts and a
// startup ping so a dead database is detected at boot rather than on the first
// query.
package database
