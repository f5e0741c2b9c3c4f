package handler

type ContextKey string

var (
	RoleCtxKey         ContextKey = "role"
	SubCtxKey          ContextKey = "sub"
	ScheduleCtxKey     ContextKey = "schedule"
	StaffProfileCtxKey ContextKey = "staffProfile"
)
