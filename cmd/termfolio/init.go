package main

import (
	"fmt"
	"os"

	"github.com/hy4ri/termfolio/internal/config"
)

// createConfigTemplate creates a template configuration file.
func createConfigTemplate() error {
	path := configPath
	if path == "" {
		p, err := config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.WriteFile(path, []byte(config.Template), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Println("  1. Point content.dir at your own collections, or keep the built-in ones")
	fmt.Println("  2. Set resume.file and resume.url for /cv")
	fmt.Println("  3. Run 'termfolio' to start")

	return nil
}
