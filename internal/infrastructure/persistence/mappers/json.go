package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"
)

func uintSliceToJSON(ids []uint) (datatypes.JSON, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal id list: %w", err)
	}
	return datatypes.JSON(data), nil
}

func jsonToUintSlice(data datatypes.JSON) ([]uint, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var ids []uint
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to unmarshal id list: %w", err)
	}
	return ids, nil
}

func mapToJSON(m map[string]interface{}) (datatypes.JSON, error) {
	if len(m) == 0 {
		return nil, nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata: %w", err)
	}
	return datatypes.JSON(data), nil
}

func jsonToMap(data datatypes.JSON) (map[string]interface{}, error) {
	if len(data) == 0 {
		return make(map[string]interface{}), nil
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metadata: %w", err)
	}
	return m, nil
}
