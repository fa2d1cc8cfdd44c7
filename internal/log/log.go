package log

import (
	"encoding/json"
	"log"
	"time"
)

type entry struct {
	TS     string         `json:"ts"`
	Level  string         `json:"level"`
	OpID   string         `json:"op_id,omitempty"`
	Action string         `json:"action,omitempty"`
	Err    string         `json:"err,omitempty"`
	Fields map[string]any `json:"fields,omitempty"`
}

func write(level, opID, action string, err error, fields map[string]any) {
	e := entry{
		TS:     time.Now().UTC().Format(time.RFC3339),
		Level:  level,
		OpID:   opID,
		Action: action,
		Fields: fields,
	}
	if err != nil {
		e.Err = err.Error()
	}
	b, _ := json.Marshal(e)
	log.Println(string(b))
}

func Info(opID, action string, fields map[string]any) { write("info", opID, action, nil, fields) }

// Audit records a completed operator command.
func Audit(opID, action string, fields map[string]any) { write("audit", opID, action, nil, fields) }

func Error(opID, action string, err error, fields map[string]any) {
	write("error", opID, action, err, fields)
}
