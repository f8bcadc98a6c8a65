package docstore

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Normalize converte um valor qualquer para a forma genérica do JSON (map, slice, float64...)
func Normalize(value any) (any, error) {
	raw, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("docstore: erro ao serializar valor: %w", err)
	}

	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("docstore: erro ao normalizar valor: %w", err)
	}
	return out, nil
}

// MergePatch sobrescreve os campos de topo de data com os campos de patch
func MergePatch(data []byte, patch map[string]any) ([]byte, error) {
	fields, err := decodeFields(data)
	if err != nil {
		return nil, err
	}

	for key, value := range patch {
		normalized, err := Normalize(value)
		if err != nil {
			return nil, err
		}
		fields[key] = normalized
	}

	return json.Marshal(fields)
}

// AppendToArray acrescenta value ao final da lista field. Um campo ausente ou que
// não seja lista passa a ser uma lista nova.
func AppendToArray(data []byte, field string, value any) ([]byte, error) {
	if field == "" {
		return nil, ErrEmptyField
	}

	fields, err := decodeFields(data)
	if err != nil {
		return nil, err
	}

	normalized, err := Normalize(value)
	if err != nil {
		return nil, err
	}

	list, _ := fields[field].([]any)
	fields[field] = append(list, normalized)

	return json.Marshal(fields)
}

func decodeFields(data []byte) (map[string]any, error) {
	fields := make(map[string]any)
	if len(data) == 0 {
		return fields, nil
	}

	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("docstore: documento inválido: %w", err)
	}
	if fields == nil {
		fields = make(map[string]any)
	}
	return fields, nil
}
