package xer

import "fmt"

// Table names the mapper reads.
const (
	TableProject  = "PROJECT"
	TableWBS      = "PROJWBS"
	TableTask     = "TASK"
	TableTaskPred = "TASKPRED"
)

func missingTable(name string) string {
	return fmt.Sprintf("%s table not found in XER file", name)
}

// MapToDomain projects decoded tables into typed records. Missing tables are
// reported in Errors; relationships with an unknown pred_type are dropped
// without an error.
func MapToDomain(tables map[string]*Table) ParseResult {
	var notes []string
	return mapTables(tables, &notes)
}

func mapTables(tables map[string]*Table, notes *[]string) ParseResult {
	var res ParseResult

	if t, ok := tables[TableProject]; ok {
		res.Projects = mapProjects(t.Rows)
	} else {
		res.Errors = append(res.Errors, missingTable(TableProject))
	}

	if t, ok := tables[TableWBS]; ok {
		res.WBS = mapWBS(t.Rows)
	} else {
		res.Errors = append(res.Errors, missingTable(TableWBS))
	}

	if t, ok := tables[TableTask]; ok {
		res.Tasks = mapTasks(t.Rows)
	} else {
		res.Errors = append(res.Errors, missingTable(TableTask))
	}

	if t, ok := tables[TableTaskPred]; ok {
		res.TaskPreds = mapTaskPreds(t.Rows, notes)
	} else {
		res.Errors = append(res.Errors, missingTable(TableTaskPred))
	}

	res.Tables = Summarize(tables)
	return res
}

func mapProjects(rows []map[string]string) []Project {
	out := make([]Project, 0, len(rows))
	for _, r := range rows {
		out = append(out, Project{
			ProjectID: r["proj_id"],
			ShortName: r["proj_short_name"],
			PlanStart: parseDate(r["plan_start_date"]),
			PlanEnd:   parseDate(r["plan_end_date"]),
			DataDate:  parseDate(r["last_recalc_date"]),
		})
	}
	return out
}

func mapWBS(rows []map[string]string) []WBS {
	out := make([]WBS, 0, len(rows))
	for _, r := range rows {
		out = append(out, WBS{
			WBSID:       r["wbs_id"],
			ProjectID:   r["proj_id"],
			ParentWBSID: optionalString(r["parent_wbs_id"]),
			ShortCode:   r["wbs_short_name"],
			Name:        r["wbs_name"],
			SortOrder:   parseNumberOr(r["seq_num"], 0),
		})
	}
	return out
}

func mapTasks(rows []map[string]string) []Task {
	out := make([]Task, 0, len(rows))
	for _, r := range rows {
		out = append(out, Task{
			TaskID:               r["task_id"],
			ProjectID:            r["proj_id"],
			WBSID:                optionalString(r["wbs_id"]),
			ActivityCode:         r["task_code"],
			Name:                 r["task_name"],
			StatusRaw:            r["status_code"],
			PercentComplete:      parseNumberOr(r["phys_complete_pct"], 0),
			TargetStart:          parseDate(r["target_start_date"]),
			TargetFinish:         parseDate(r["target_end_date"]),
			ActualStart:          parseDate(r["act_start_date"]),
			ActualFinish:         parseDate(r["act_end_date"]),
			EarlyStart:           parseDate(r["early_start_date"]),
			EarlyFinish:          parseDate(r["early_end_date"]),
			LateStart:            parseDate(r["late_start_date"]),
			LateFinish:           parseDate(r["late_end_date"]),
			PlannedDurationHrs:   parseNumber(r["target_drtn_hr_cnt"]),
			RemainingDurationHrs: parseNumber(r["remain_drtn_hr_cnt"]),
			TotalFloatHrs:        parseNumber(r["total_float_hr_cnt"]),
			FreeFloatHrs:         parseNumber(r["free_float_hr_cnt"]),
			ActivityType:         optionalString(r["task_type"]),
			DrivingPathFlag:      parseFlag(r["driving_path_flag"]),
			ConstraintType:       optionalString(r["cstr_type"]),
			ConstraintDate:       parseDate(r["cstr_date"]),
		})
	}
	return out
}

func mapTaskPreds(rows []map[string]string, notes *[]string) []TaskPred {
	out := make([]TaskPred, 0, len(rows))
	for _, r := range rows {
		predType := r["pred_type"]
		if !IsKnownPredType(predType) {
			*notes = append(*notes, fmt.Sprintf("relationship %s dropped: unknown pred_type %q", r["task_pred_id"], predType))
			continue
		}
		out = append(out, TaskPred{
			ID:                r["task_pred_id"],
			TaskID:            r["task_id"],
			PredecessorTaskID: r["pred_task_id"],
			ProjectID:         r["proj_id"],
			PredType:          predType,
			LagHrs:            parseNumberOr(r["lag_hr_cnt"], 0),
		})
	}
	return out
}
