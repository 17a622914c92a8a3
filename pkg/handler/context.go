package handler

// DI for all handlers alike.

import (
	"github.com/donalddop/proteinlab/pkg/db"
)

type APIContext struct {
	Store db.ProteinStore
}
