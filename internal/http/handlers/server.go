package handlers

import (
	"github.com/nupl21/dieta-app/internal/planner"
	repo "github.com/nupl21/dieta-app/internal/repo"
	"go.uber.org/zap"
)

var (
	sheetRepo repo.SheetRepository
	cartRepo  repo.CartRepository
	userRepo  repo.UserRepository

	plans  = planner.New(nil)
	logger = zap.NewNop()

	defaultSchedule = planner.ScheduleConfig{Days: 7, StartWeekday: 1}
)

func SetSheetRepo(r repo.SheetRepository) {
	sheetRepo = r
}

func SetCartRepo(r repo.CartRepository) {
	cartRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetLogger(l *zap.Logger) {
	logger = l
	plans = planner.New(l)
}

// SetDefaultSchedule sets the horizon used when a plan request leaves it out.
func SetDefaultSchedule(days, startWeekday int) {
	defaultSchedule = planner.ScheduleConfig{Days: days, StartWeekday: startWeekday}
}
