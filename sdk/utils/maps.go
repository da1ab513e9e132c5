// SPDX-FileCopyrightText: © 2026 Materials Connect contributors
//
// SPDX-License-Identifier: Apache-2.0

package utils

// MergeMaps merges override into base, giving precedence to override.
// When both sides hold a nested map under the same key the merge recurses;
// any other collision is won by the override value wholesale. Neither
// input is mutated.
func MergeMaps(base, override map[string]interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(base)+len(override))

	for k, v := range base {
		result[k] = v
	}

	for k, ov := range override {
		bv, exists := result[k]
		if exists && isMap(bv) && isMap(ov) {
			result[k] = MergeMaps(bv.(map[string]interface{}), ov.(map[string]interface{}))
			continue
		}
		result[k] = ov
	}

	return result
}

func isMap(v interface{}) bool {
	_, ok := v.(map[string]interface{})
	return ok
}
