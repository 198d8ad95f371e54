package validation

// Result accumulates messages for one property name during a single validation
// pass. Consumer-style validators append any number of messages to it. A
// Result is transient and not reused across passes.
type Result struct {
	propertyName string
	messages     []Message
}

// NewResult creates a new Result for the given property name.
func NewResult(propertyName string) *Result {
	return &Result{
		propertyName: propertyName,
		messages:     make([]Message, 0),
	}
}

// PropertyName returns the property name the Result collects messages for.
func (result *Result) PropertyName() string {
	return result.propertyName
}

// Add appends the given Message. Messages without a property name are stamped
// with the Result's one, missing codes default to CodeUnknown. The None
// sentinel is ignored.
func (result *Result) Add(message Message) {
	if message.IsNone() {
		return
	}
	if message.PropertyName == "" {
		message.PropertyName = result.propertyName
	}
	if message.Code == "" {
		message.Code = CodeUnknown
	}
	result.messages = append(result.messages, message)
}

// Error appends an error message with the given template.
func (result *Result) Error(template string) {
	result.Add(NewError(result.propertyName, template))
}

// ErrorWithCode appends an error message with the given error code and
// template.
func (result *Result) ErrorWithCode(code string, template string) {
	result.Add(NewError(result.propertyName, template).WithCode(code))
}

// ErrorWithCause appends an error message with the given template and cause.
func (result *Result) ErrorWithCause(template string, cause error) {
	result.Add(NewError(result.propertyName, template).WithCause(cause))
}

// Warn appends a warn message with the given template.
func (result *Result) Warn(template string) {
	result.Add(NewWarn(result.propertyName, template))
}

// WarnWithCode appends a warn message with the given error code and template.
func (result *Result) WarnWithCode(code string, template string) {
	result.Add(NewWarn(result.propertyName, template).WithCode(code))
}

// Info appends an info message with the given template.
func (result *Result) Info(template string) {
	result.Add(NewInfo(result.propertyName, template))
}

// InfoWithCode appends an info message with the given error code and template.
func (result *Result) InfoWithCode(code string, template string) {
	result.Add(NewInfo(result.propertyName, template).WithCode(code))
}

// Messages returns the accumulated messages in append order.
func (result *Result) Messages() []Message {
	return result.messages
}
