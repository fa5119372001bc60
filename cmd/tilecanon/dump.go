package main

import (
	"encoding/json"
	"os"

	"github.com/calef/tilecanon/pkg/maps"
)

func dumpCommand(path string) error {
	gameMap, err := maps.FromFile(path)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(gameMap)
}
