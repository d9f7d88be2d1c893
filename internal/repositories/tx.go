package repositories

import (
	"gorm.io/gorm"
)

// TxRunner runs a function inside a single database transaction. Services
// depend on this instead of calling db.Transaction directly so unit tests
// can substitute an in-memory implementation.
type TxRunner interface {
	WithinTx(db *gorm.DB, fn func(tx *gorm.DB) error) error
}

type gormTxRunner struct{}

func NewTxRunner() TxRunner {
	return gormTxRunner{}
}

func (gormTxRunner) WithinTx(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.Transaction(fn)
}
