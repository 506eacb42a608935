package registryv1

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"

	"devproc/internal/process"
)

const (
	fieldLabel          = "label"
	fieldCommand        = "command"
	fieldDirectory      = "directory"
	fieldPort           = "port"
	fieldDisableAutorun = "disable_autorun"
	fieldIndex          = "index"
	fieldSleep          = "sleep"
)

// NewAddRequest builds the Add payload.
func NewAddRequest(label string, port int) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldLabel: structpb.NewStringValue(label),
		fieldPort:  structpb.NewNumberValue(float64(port)),
	}}
}

// ParseAddRequest extracts label and port from an Add payload.
func ParseAddRequest(req *structpb.Struct) (string, int, error) {
	if req == nil {
		return "", 0, errors.New("request is empty")
	}
	labelVal, ok := req.GetFields()[fieldLabel]
	if !ok {
		return "", 0, errors.New("label is required")
	}
	if _, isString := labelVal.GetKind().(*structpb.Value_StringValue); !isString {
		return "", 0, errors.New("label must be a string")
	}
	portVal, ok := req.GetFields()[fieldPort]
	if !ok {
		return "", 0, errors.New("port is required")
	}
	if _, isNumber := portVal.GetKind().(*structpb.Value_NumberValue); !isNumber {
		return "", 0, errors.New("port must be a number")
	}
	port := portVal.GetNumberValue()
	if port != float64(int(port)) {
		return "", 0, fmt.Errorf("port must be an integer, got %v", port)
	}
	return labelVal.GetStringValue(), int(port), nil
}

// ProcessToStruct encodes a process for ListProcesses.
func ProcessToStruct(p process.Process) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldLabel:          structpb.NewStringValue(p.Label),
		fieldCommand:        structpb.NewStringValue(p.Command),
		fieldDirectory:      structpb.NewStringValue(p.Dir),
		fieldPort:           structpb.NewNumberValue(float64(p.Port)),
		fieldDisableAutorun: structpb.NewBoolValue(p.DisableAutorun),
		fieldIndex:          structpb.NewNumberValue(float64(p.Index)),
		fieldSleep:          structpb.NewNumberValue(float64(p.Sleep)),
	}}
}

// ProcessFromStruct decodes a ListProcesses element. Missing fields keep
// their zero value.
func ProcessFromStruct(s *structpb.Struct) process.Process {
	f := s.GetFields()
	return process.Process{
		Label:          f[fieldLabel].GetStringValue(),
		Command:        f[fieldCommand].GetStringValue(),
		Dir:            f[fieldDirectory].GetStringValue(),
		Port:           int(f[fieldPort].GetNumberValue()),
		DisableAutorun: f[fieldDisableAutorun].GetBoolValue(),
		Index:          int(f[fieldIndex].GetNumberValue()),
		Sleep:          int(f[fieldSleep].GetNumberValue()),
	}
}

// ProcessesToList encodes processes in order.
func ProcessesToList(procs []process.Process) *structpb.ListValue {
	out := &structpb.ListValue{Values: make([]*structpb.Value, 0, len(procs))}
	for _, p := range procs {
		out.Values = append(out.Values, structpb.NewStructValue(ProcessToStruct(p)))
	}
	return out
}

// ProcessesFromList decodes a ListProcesses response. Non-struct elements are skipped.
func ProcessesFromList(l *structpb.ListValue) []process.Process {
	out := make([]process.Process, 0, len(l.GetValues()))
	for _, v := range l.GetValues() {
		s := v.GetStructValue()
		if s == nil {
			continue
		}
		out = append(out, ProcessFromStruct(s))
	}
	return out
}
