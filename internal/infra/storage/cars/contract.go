package cars

import (
	"github.com/KirillBalashovIS122/SkodaExpert/pkg/dbmetrics"
)

// DBExecutor общий интерфейс выполнения запросов
type DBExecutor = dbmetrics.DBExecutor
