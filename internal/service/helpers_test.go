package service

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"testing"

	"github.com/alexanderramin/xerplan/internal/repository"
	"github.com/alexanderramin/xerplan/internal/testutil"
)

type repos struct {
	db            *sql.DB
	projects      *repository.SQLiteProjectRepo
	wbs           *repository.SQLiteWBSRepo
	activities    *repository.SQLiteActivityRepo
	relationships *repository.SQLiteRelationshipRepo
	runs          *repository.SQLiteImportRunRepo
}

func setupRepos(t *testing.T) repos {
	t.Helper()
	database := testutil.NewTestDB(t)
	return repos{
		db:            database,
		projects:      repository.NewSQLiteProjectRepo(database),
		wbs:           repository.NewSQLiteWBSRepo(database),
		activities:    repository.NewSQLiteActivityRepo(database),
		relationships: repository.NewSQLiteRelationshipRepo(database),
		runs:          repository.NewSQLiteImportRunRepo(database),
	}
}

func (r repos) importService(observers ...UseCaseObserver) ImportService {
	return NewImportService(r.projects, r.activities, testutil.NewTestUoW(r.db), observers...)
}

func (r repos) scheduleService(observers ...UseCaseObserver) ScheduleService {
	return NewScheduleService(r.projects, r.wbs, r.activities, r.relationships, r.runs, observers...)
}

func xerLines(rows ...[]string) string {
	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, strings.Join(r, "\t"))
	}
	return strings.Join(lines, "\n") + "\n"
}

var taskFields = []string{"%F", "task_id", "proj_id", "wbs_id", "task_code", "task_name", "status_code",
	"remain_drtn_hr_cnt", "total_float_hr_cnt", "early_start_date"}

// towerXER is a small but complete schedule:
//   - WBS W3 is listed before its parent W2; W9 hangs off an EPS node not in the file
//   - T1 complete, T2 not started, T3 in progress with negative float
//   - L3 points at an unknown task, L4 has an unknown link type
func towerXER() string {
	return xerLines(
		[]string{"ERMHDR", "19.12", "2024-03-01", "Project", "admin"},
		[]string{"%T", "PROJECT"},
		[]string{"%F", "proj_id", "proj_short_name", "plan_start_date", "plan_end_date", "last_recalc_date"},
		[]string{"%R", "P1", "TOWER", "2024-01-08 08:00", "2024-12-20 17:00", "2024-03-01 00:00"},
		[]string{"%T", "PROJWBS"},
		[]string{"%F", "wbs_id", "proj_id", "parent_wbs_id", "wbs_short_name", "wbs_name", "seq_num"},
		[]string{"%R", "W3", "P1", "W2", "FND", "Foundations", "5"},
		[]string{"%R", "W2", "P1", "W1", "SUB", "Substructure", "20"},
		[]string{"%R", "W1", "P1", "", "TWR", "Tower", "10"},
		[]string{"%R", "W9", "P1", "EPS", "ADM", "Admin", "30"},
		[]string{"%T", "TASK"},
		taskFields,
		[]string{"%R", "T1", "P1", "W3", "A1000", "Excavate", "TK_Complete", "0", "0", "2024-01-08 08:00"},
		[]string{"%R", "T2", "P1", "W3", "A1010", "Pour Footings", "TK_NotStart", "80", "24", "2024-01-22 08:00"},
		[]string{"%R", "T3", "P1", "W1", "A1020", "Steel Erection", "TK_Active", "16", "-8", "2024-01-15 08:00"},
		[]string{"%T", "TASKPRED"},
		[]string{"%F", "task_pred_id", "task_id", "pred_task_id", "proj_id", "pred_type", "lag_hr_cnt"},
		[]string{"%R", "L1", "T2", "T1", "P1", "PR_FS", "8"},
		[]string{"%R", "L2", "T3", "T2", "P1", "PR_SS", "0"},
		[]string{"%R", "L3", "T3", "T404", "P1", "PR_FS", "0"},
		[]string{"%R", "L4", "T3", "T1", "P1", "PR_XX", "0"},
		[]string{"%E"},
	)
}

// smallXER carries one task under the same proj_id as towerXER.
func smallXER() string {
	return xerLines(
		[]string{"%T", "PROJECT"},
		[]string{"%F", "proj_id", "proj_short_name"},
		[]string{"%R", "P1", "TOWER"},
		[]string{"%T", "TASK"},
		taskFields,
		[]string{"%R", "T7", "P1", "", "B2000", "Handover", "TK_NotStart", "8", "0", ""},
	)
}

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func (o *recordingObserver) last() UseCaseEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.events[len(o.events)-1]
}
