package main

import (
	"context"
	"fmt"
	"log"

	"github.com/FumiHubCNS/hvscope"
)

func main() {
	in, err := hvscope.Conf("../../parameters.toml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	table, err := in.Table(context.Background(), hvscope.ModuleCAEN, "mini-caen0", "")
	if err != nil {
		log.Fatalf("decode monitor log: %v", err)
	}

	for ch, rows := range table.Partitions() {
		fmt.Printf("ch%d: %d observations\n", ch, len(rows))
	}
}
