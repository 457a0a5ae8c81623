package elasticsearch

const (
	// DefaultRefresh makes writes visible to the next search before returning.
	DefaultRefresh = "wait_for"

	typeIndexNotFound      = "index_not_found_exception"
	typeIndexAlreadyExists = "resource_already_exists_exception"
	typeVersionConflict    = "version_conflict_engine_exception"
)
