package repository

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/clubdeck/api/internal/database"
	"github.com/surrealdb/surrealdb.go/pkg/models"
)

// isUniqueConstraintError checks if an error is a unique constraint violation
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "unique") ||
		strings.Contains(errStr, "duplicate") ||
		strings.Contains(errStr, "already exists")
}

// recordIDString converts a SurrealDB record id of any representation to the
// "table:id" string form used throughout the API.
func recordIDString(id interface{}) string {
	switch v := id.(type) {
	case string:
		return v
	case models.RecordID:
		return v.String()
	case *models.RecordID:
		if v != nil {
			return v.String()
		}
	case map[string]interface{}:
		if tb, ok := v["tb"].(string); ok {
			if id, ok := v["id"].(string); ok {
				return tb + ":" + id
			}
		}
	}

	// Try JSON marshaling as fallback
	if data, err := json.Marshal(id); err == nil {
		var recordID models.RecordID
		if err := json.Unmarshal(data, &recordID); err == nil {
			return recordID.String()
		}
	}

	return ""
}

// normalizeValue recursively rewrites driver-specific values (record ids,
// datetimes) into JSON-friendly forms so a result map can be unmarshaled
// into an entity struct.
func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case models.RecordID:
		return val.String()
	case *models.RecordID:
		if val != nil {
			return val.String()
		}
		return nil
	case models.CustomDateTime:
		return val.Time.Format(time.RFC3339Nano)
	case *models.CustomDateTime:
		if val != nil {
			return val.Time.Format(time.RFC3339Nano)
		}
		return nil
	case map[string]interface{}:
		normalized := make(map[string]interface{}, len(val))
		for k, item := range val {
			normalized[k] = normalizeValue(item)
		}
		return normalized
	case []interface{}:
		normalized := make([]interface{}, len(val))
		for i, item := range val {
			normalized[i] = normalizeValue(item)
		}
		return normalized
	default:
		return v
	}
}

// unwrapRecord peels the {status: "OK", result: [...]} envelope some query
// paths return and yields the first record map.
func unwrapRecord(result interface{}) (map[string]interface{}, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	if resp, ok := result.(map[string]interface{}); ok {
		if status, ok := resp["status"].(string); ok && status == "OK" {
			if resultData, ok := resp["result"].([]interface{}); ok {
				if len(resultData) == 0 {
					return nil, database.ErrNotFound
				}
				result = resultData[0]
			}
		}
	}

	if arr, ok := result.([]interface{}); ok {
		if len(arr) == 0 {
			return nil, database.ErrNotFound
		}
		result = arr[0]
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}
	return data, nil
}

// parseRecord normalizes a single query result and unmarshals it into out.
func parseRecord(result interface{}, out interface{}) error {
	data, err := unwrapRecord(result)
	if err != nil {
		return err
	}

	normalized := normalizeValue(data)
	jsonBytes, err := json.Marshal(normalized)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonBytes, out)
}

// parseRecords normalizes a multi-result query response and unmarshals each
// record into a value produced by newItem, appending via appendItem.
func parseRecords(results []interface{}, each func(data map[string]interface{}) error) error {
	for _, result := range results {
		resp, ok := result.(map[string]interface{})
		if !ok {
			continue
		}
		status, ok := resp["status"].(string)
		if !ok || status != "OK" {
			continue
		}
		resultData, ok := resp["result"].([]interface{})
		if !ok {
			continue
		}
		for _, item := range resultData {
			data, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			if err := each(data); err != nil {
				return err
			}
		}
	}
	return nil
}

// unmarshalRecordMap normalizes one raw record map into out.
func unmarshalRecordMap(data map[string]interface{}, out interface{}) error {
	normalized := normalizeValue(data)
	jsonBytes, err := json.Marshal(normalized)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonBytes, out)
}

// timestampVar renders a time for storage inside an embedded list entry.
func timestampVar(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
