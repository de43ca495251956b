package domain

// Action identifies a guarded workflow operation.
type Action string

// Guarded actions.
const (
	ActionCreateEvent      Action = "create_event"
	ActionUpdateEvent      Action = "update_event"
	ActionDeleteEvent      Action = "delete_event"
	ActionRegisterForEvent Action = "register_for_event"
	ActionMarkAttendance   Action = "mark_attendance"
	ActionSubmitFeedback   Action = "submit_feedback"
)

// rolePolicy is the fixed role/action capability table. Ownership checks for
// update/delete (creator or ADMIN) happen in the services on top of this.
var rolePolicy = map[Action]map[Role]struct{}{
	ActionCreateEvent:      {RoleFaculty: {}, RoleAdmin: {}},
	ActionUpdateEvent:      {RoleFaculty: {}, RoleAdmin: {}},
	ActionDeleteEvent:      {RoleFaculty: {}, RoleAdmin: {}},
	ActionRegisterForEvent: {RoleStudent: {}},
	ActionMarkAttendance:   {RoleFaculty: {}, RoleAdmin: {}},
	ActionSubmitFeedback:   {RoleStudent: {}},
}

// MayPerform reports whether a caller with the given role is allowed to
// perform the action. It is a pure capability check with no I/O.
func MayPerform(role Role, action Action) bool {
	allowed, ok := rolePolicy[action]
	if !ok {
		return false
	}
	_, ok = allowed[role]
	return ok
}
