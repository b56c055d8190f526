// Server = coordinator store + status reporter, wired up from
// environment-driven configuration. Mirrors the teacher's
// cmd/server.go shape: a flat config struct of strings, one function
// that builds the long-running components and blocks.
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	logger "github.com/sirupsen/logrus"

	"github.com/TEENet-io/atomicswap-core/coordinator"
	"github.com/TEENet-io/atomicswap-core/coordinatormetrics"
	"github.com/TEENet-io/atomicswap-core/logconfig"
	"github.com/TEENet-io/atomicswap-core/statusapi"

	_ "github.com/mattn/go-sqlite3"
)

// Keep the configuration's fields as "text" as possible, so it is
// easy to load from env vars or a config file.
type SwapEngineConfig struct {
	// state side
	DbDriver   string // eg. "sqlite3"
	DbFilePath string // db file path, or ":memory:"

	// http side
	HttpIp   string // eg. 0.0.0.0
	HttpPort string // eg. 8080
}

// FileExists checks if a file exists and is readable.
func FileExists(filePath string) bool {
	file, err := os.Open(filePath)
	if err != nil {
		return false
	}
	defer file.Close()
	return true
}

// StartSwapEngineAndWait builds the coordinator store, the metrics
// registry, and the status reporter, then blocks until SIGINT/SIGTERM.
func StartSwapEngineAndWait(sec *SwapEngineConfig) {
	logconfig.ConfigProductionLogger()

	store, err := coordinator.NewStore(sec.DbDriver, sec.DbFilePath)
	if err != nil {
		logger.Fatalf("failed to open coordinator store: %v", err)
		return
	}
	defer store.Close()

	metrics := coordinatormetrics.NewRegistry()
	coord := coordinator.NewCoordinator(store, metrics)

	reporter := statusapi.NewServer(sec.HttpIp, sec.HttpPort, coord, metrics)
	go reporter.Run()

	fmt.Println("swap engine running, press Ctrl+C to stop")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
}
