// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// StructuredJSONConfig mirrors [StructuredConfig] with json tags for
// the optional config file.
type StructuredJSONConfig struct {
	Crypto struct {
		KDFTime    uint32 `json:"kdf_time"`
		KDFMemory  uint32 `json:"kdf_memory"`
		KDFThreads uint8  `json:"kdf_threads"`
		ChunkSize  int    `json:"chunk_size"`
	} `json:"crypto,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Crypto: Crypto{
			KDFTime:    jsonCfg.Crypto.KDFTime,
			KDFMemory:  jsonCfg.Crypto.KDFMemory,
			KDFThreads: jsonCfg.Crypto.KDFThreads,
			ChunkSize:  jsonCfg.Crypto.ChunkSize,
		},
	}

	return cfg, nil
}
