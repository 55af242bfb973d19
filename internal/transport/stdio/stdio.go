// Package stdio implements the request/response protocol spoken with the
// desktop frontend: one JSON envelope on stdin, exactly one JSON object on
// stdout. Logging never touches stdout.
package stdio

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"regie/internal/document"
)

// Envelope is the outer request. Script selects the legacy generator the
// frontend would have spawned; the payload is that generator's input.
type Envelope struct {
	Command string          `json:"command"`
	Script  string          `json:"script"`
	Payload json.RawMessage `json:"payload"`
}

type pingResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

type generateResponse struct {
	Success      bool   `json:"success"`
	DocxFileName string `json:"docxFileName"`
	DocxFilePath string `json:"docxFilePath"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Runner wires the protocol to the document service. In and Out default to
// the process streams in main; tests substitute buffers.
type Runner struct {
	Service *document.Service
	Log     *slog.Logger
	In      io.Reader
	Out     io.Writer
}

// Run handles one invocation and returns the process exit code.
func (r *Runner) Run(args []string) int {
	for _, arg := range args {
		if arg == "--ping" {
			r.emit(pingResponse{Success: true, Status: "ok"})
			return 0
		}
	}

	env, err := r.readEnvelope()
	if err != nil {
		return r.fail(err)
	}

	command := strings.ToLower(strings.TrimSpace(env.Command))
	if command == "" {
		command = "generate"
	}
	if command == "ping" {
		r.emit(pingResponse{Success: true, Status: "ok"})
		return 0
	}
	if command != "generate" {
		return r.fail(validationErrorf("Unsupported backend command: %s", command))
	}

	result, err := r.dispatch(env)
	if err != nil {
		return r.fail(err)
	}
	r.emit(generateResponse{Success: true, DocxFileName: result.DocxFileName, DocxFilePath: result.DocxFilePath})
	return 0
}

// readEnvelope reads the whole input. Empty input is a valid empty
// envelope; the script check rejects it with a precise message.
func (r *Runner) readEnvelope() (Envelope, error) {
	raw, err := io.ReadAll(r.In)
	if err != nil {
		return Envelope{}, validationErrorf("Invalid JSON input: %v", err)
	}
	if len(raw) == 0 {
		return Envelope{}, nil
	}
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, validationErrorf("Invalid JSON input: %v", err)
	}
	return env, nil
}

func (r *Runner) dispatch(env Envelope) (document.Result, error) {
	script := normalizeScript(env.Script)

	var req document.Request
	if len(env.Payload) > 0 {
		if err := json.Unmarshal(env.Payload, &req); err != nil {
			return document.Result{}, validationErrorf("Invalid JSON input: %v", err)
		}
	}

	switch script {
	case "generate_document", "generate_document.py":
		return r.Service.Generate(&req)
	case "generate_role", "generate_role.py":
		// The timesheet generator never carried a type tag; route it to
		// the timesheet renderer explicitly.
		req.DocumentType = string(document.TypeRoleJournees)
		return r.Service.Generate(&req)
	}
	if script == "" {
		script = "(empty)"
	}
	return document.Result{}, validationErrorf("Unsupported backend script: %s", script)
}

// normalizeScript reduces a script reference to its lowercase base name,
// tolerating Windows-style paths from the frontend.
func normalizeScript(value string) string {
	script := strings.ReplaceAll(strings.TrimSpace(value), "\\", "/")
	if script == "" {
		return ""
	}
	return strings.ToLower(path.Base(script))
}

// protocolError is a validation failure raised before the document layer
// is reached; its message goes to the client verbatim.
type protocolError struct{ msg string }

func (e *protocolError) Error() string { return e.msg }

func (e *protocolError) Is(target error) bool { return target == document.ErrValidation }

func validationErrorf(format string, args ...any) error {
	return &protocolError{msg: fmt.Sprintf(format, args...)}
}

func (r *Runner) emit(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		r.Log.Error("response marshal failed", slog.Any("error", err))
		return
	}
	if _, err := r.Out.Write(data); err != nil {
		r.Log.Error("response write failed", slog.Any("error", err))
	}
}

func (r *Runner) fail(err error) int {
	r.Log.Error("request failed", slog.Any("error", err))
	r.emit(failureResponse{Success: false, Message: err.Error()})
	return 1
}
