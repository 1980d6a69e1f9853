package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/lintang-b-s/cvrp/pkg"
	"github.com/lintang-b-s/cvrp/pkg/instance"
	"github.com/lintang-b-s/cvrp/pkg/logger"
	"github.com/lintang-b-s/cvrp/pkg/util"
	"go.uber.org/zap"
)

var (
	dataDir     = flag.String("dir", "", "directory of .vrp files (default: $CVRP_DATA_DIR, then the build default)")
	numWorkers  = flag.Int("workers", 4, "number of instances loaded concurrently")
	snapshot    = flag.Bool("snapshot", false, "write a bzip2 snapshot (<name>.vrp.bz2) next to each loaded instance")
	printMatrix = flag.Bool("print-matrix", false, "print the cost matrix of each instance")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: cvrp-loader [flags] <instance name>...\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := util.ReadConfig(); err != nil {
		panic(err)
	}
	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	dir := *dataDir
	if dir == "" {
		dir = util.InstanceDir()
	}

	loader := instance.NewLoader(log, dir)
	log.Info("loading CVRP instances", zap.String("data_dir", loader.DataDir()), zap.Int("count", flag.NArg()))
	results := loader.LoadBatch(context.Background(), flag.Args(), *numWorkers)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			log.Error("could not load instance", zap.String("name", res.Name), zap.Error(res.Err))
			failed++
			continue
		}
		inst := res.Instance
		log.Sugar().Infof("%s: dimension=%d capacity=%d edge_weight_type=%s total_demand=%g",
			inst.Name(), inst.NumNodes(), inst.Capacity(), inst.EdgeWeightType(), inst.TotalDemand())
		if !inst.CostsDefined() {
			log.Warn("edge weight type has no cost rule, all costs are zero",
				zap.String("name", inst.Name()), zap.String("edge_weight_type", inst.EdgeWeightType()))
		}

		if *printMatrix {
			printCostMatrix(inst)
		}

		if *snapshot {
			filename := strings.TrimSuffix(loader.InstancePath(inst.Name()), pkg.INSTANCE_FILE_EXT) + pkg.SNAPSHOT_FILE_EXT
			if err := instance.WriteSnapshot(inst, filename); err != nil {
				log.Error("could not write snapshot", zap.String("file", filename), zap.Error(err))
				failed++
				continue
			}
			log.Info("wrote snapshot", zap.String("file", filename))
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}

func printCostMatrix(inst *instance.Instance) {
	for _, row := range inst.CostMatrix().Rows() {
		for j, c := range row {
			if j > 0 {
				fmt.Print(" ")
			}
			fmt.Print(c)
		}
		fmt.Println()
	}
}
