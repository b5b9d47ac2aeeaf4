// Copyright 2026 The arcres Authors. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	arcres "github.com/arclib/arcres"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	showTables bool
	quick      bool
)

func dumpFile(filename string, cmd *cobra.Command) {
	log.Printf("Processing filename %s", filename)

	f, err := os.Open(filename)
	if err != nil {
		log.Printf("error while opening file: %s, reason: %s", filename, err)
		return
	}
	defer f.Close()

	archive, m, err := arcres.OpenArchiveFile(f)
	if err != nil {
		log.Printf("error while reading archive: %s, reason: %s", filename, err)
		return
	}
	defer m.Unmap()

	wantTables, _ := cmd.Flags().GetBool("tables")
	if wantTables {
		counts := map[string]int{
			"file_path":     archive.NumFilePath(),
			"file_entity":   archive.NumFileEntity(),
			"file_info":     archive.NumFileInfo(),
			"file_desc":     archive.NumFileDesc(),
			"file_data":     archive.NumFileData(),
			"file_package":  archive.NumFilePackage(),
			"file_group":    archive.NumFileGroup(),
			"stream_folder": archive.NumStreamFolder(),
			"stream_path":   archive.NumStreamPath(),
			"stream_desc":   archive.NumStreamDesc(),
			"stream_data":   archive.NumStreamData(),
		}
		out, _ := json.MarshalIndent(counts, "", "\t")
		fmt.Println(string(out))
	}

	wantQuick, _ := cmd.Flags().GetBool("quick-serialize")
	if wantQuick {
		data := archive.Resource().QuickSerialize()
		fmt.Printf("quick-serialized %d bytes\n", len(data))
	}
}

func dump(cmd *cobra.Command, args []string) {
	for _, filePath := range args {
		dumpFile(filePath, cmd)
	}
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "arcres",
		Short: "A resource-table archive reader",
		Long:  "Reads and rewrites the resource-table section of a bulk game asset archive",
		Run:   func(cmd *cobra.Command, args []string) {},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Long:  "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("arcres 0.1.0")
		},
	}

	var dumpCmd = &cobra.Command{
		Use:   "dump",
		Short: "Dumps table counts for one or more archives",
		Long:  "Opens each archive, loads its resource tables, and prints table counts",
		Args:  cobra.MinimumNArgs(1),
		Run:   dump,
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	dumpCmd.Flags().BoolVarP(&showTables, "tables", "", true, "print table record counts")
	dumpCmd.Flags().BoolVarP(&quick, "quick-serialize", "", false, "round-trip through QuickSerialize and print its size")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
