// Command typegen generates QML type catalogs from extracted C++ declarations.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
