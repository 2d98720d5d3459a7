// Package service provides the business logic layer for the bike driving game.
//
// The service package implements:
//   - Board profile resolution through a ConfigManager
//   - Running a tokenized command script against a fresh board and bike
//   - Collecting reports, ignored-command diagnostics and the final state
//
// Core Types:
//
// Simulator runs one script on one board profile. BikeService resolves a
// profile by name (falling back to the manager default) and delegates to a
// Simulator. RunResult captures everything a run produced.
//
// Usage:
//
//	configMgr, _ := config.NewManager("configs")
//	svc := service.NewBikeService(configMgr, controller.NewWriterOutput(os.Stdout, os.Stdout))
//
//	result, err := svc.RunFile(ctx, "", "commands.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(result.Final)
//
// Runs are sequential. Each command completes before the next one starts
// and the context is only checked between commands.
package service
