package apperr

// ValidationError reports a request that can never succeed as sent.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// NotFoundError reports a missing resource (document, session, template, tool).
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found: " + e.ID
}

func NewNotFound(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// UnavailableError reports a downstream model provider or store that could not be reached.
type UnavailableError struct {
	Service string
	Err     error
}

func (e *UnavailableError) Error() string {
	if e.Err != nil {
		return e.Service + " unavailable: " + e.Err.Error()
	}
	return e.Service + " unavailable"
}

func (e *UnavailableError) Unwrap() error {
	return e.Err
}

func NewUnavailable(service string, err error) *UnavailableError {
	return &UnavailableError{Service: service, Err: err}
}
