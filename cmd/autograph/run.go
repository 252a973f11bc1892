package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/autograph/config"
	"github.com/katalvlaran/autograph/conformer"
	"github.com/katalvlaran/autograph/engine"
	"github.com/katalvlaran/autograph/partition"
	"github.com/katalvlaran/autograph/report"
	"github.com/katalvlaran/autograph/rmsd"
	"github.com/katalvlaran/autograph/subset"
)

// runFlags mirrors config.Config; only flags set on the command line
// override the file.
type runFlags struct {
	input, output      string
	strategy, centroid string
	epsilon            float64
	resolution         float64
	tau                int
	restarts           int
	subset             int
	randomize          bool
	seed               int64
	keepHydrogens      bool
	hetatm             bool
	copyConformers     bool
	energyPath         string
	energyLabel        string
}

func newRunCmd(g *globalFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run [input dir] [output dir]",
		Short: "Cluster the conformers of a directory",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd, g.verbose)
			cfg, err := loadConfig(g.configPath, cmd.Flags(), f, args)
			if err != nil {
				return err
			}
			return run(cmd, logger, cfg)
		},
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.input, "input", "i", "", "directory of xyz, pdb or mol files")
	fl.StringVarP(&f.output, "output", "o", "", "directory to write results to")
	fl.StringVarP(&f.strategy, "strategy", "s", "", "louvain, nmrclust, treecut or rckmeans")
	fl.StringVarP(&f.centroid, "centroid", "c", "", "degree, eccentricity, betweenness, medoid or energy")
	fl.Float64Var(&f.epsilon, "epsilon", 0, "affinity kernel scale")
	fl.Float64Var(&f.resolution, "resolution", 0, "louvain resolution")
	fl.IntVar(&f.tau, "tau", 0, "tree cut minimum run length")
	fl.IntVar(&f.restarts, "restarts", 0, "rckmeans restarts per k")
	fl.IntVar(&f.subset, "subset", 0, "cluster this many sampled conformers and assign the rest")
	fl.BoolVar(&f.randomize, "randomize", false, "shuffle the conformer order before clustering")
	fl.Int64Var(&f.seed, "seed", 0, "random seed")
	fl.BoolVar(&f.keepHydrogens, "keep-hydrogens", false, "keep hydrogen atoms")
	fl.BoolVar(&f.hetatm, "hetatm", true, "read PDB HETATM records")
	fl.BoolVar(&f.copyConformers, "copy", true, "copy conformer files into cluster directories")
	fl.StringVar(&f.energyPath, "energy", "", "CSV table of conformer energies")
	fl.StringVar(&f.energyLabel, "energy-label", "", "energy column of the table")

	return cmd
}

func loadConfig(path string, fl *pflag.FlagSet, f *runFlags, args []string) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if len(args) > 0 {
		cfg.Input = args[0]
	}
	if len(args) > 1 {
		cfg.Output = args[1]
	}

	set := func(name string, apply func()) {
		if fl.Changed(name) {
			apply()
		}
	}
	set("input", func() { cfg.Input = f.input })
	set("output", func() { cfg.Output = f.output })
	set("strategy", func() { cfg.Strategy = f.strategy })
	set("centroid", func() { cfg.Centroid = f.centroid })
	set("epsilon", func() { cfg.Epsilon = f.epsilon })
	set("resolution", func() { cfg.Louvain.Resolution = f.resolution })
	set("tau", func() { cfg.TreeCut.Tau = f.tau })
	set("restarts", func() { cfg.RCKmeans.Restarts = f.restarts })
	set("subset", func() { cfg.Subset = f.subset })
	set("randomize", func() { cfg.Randomize = f.randomize })
	set("seed", func() { cfg.Seed = f.seed })
	set("keep-hydrogens", func() { cfg.KeepHydrogens = f.keepHydrogens })
	set("hetatm", func() { cfg.HETATM = f.hetatm })
	set("copy", func() { cfg.CopyConformers = f.copyConformers })
	set("energy", func() { cfg.Energy.Path = f.energyPath })
	set("energy-label", func() { cfg.Energy.Label = f.energyLabel })

	return cfg, cfg.Validate()
}

func run(cmd *cobra.Command, logger *logrus.Logger, cfg config.Config) error {
	ec, err := cfg.EngineConfig()
	if err != nil {
		return err
	}
	names, err := conformer.ScanDir(cfg.Input)
	if err != nil {
		return err
	}
	if cfg.Randomize {
		perm := subset.Shuffle(len(names), subset.NewRand(cfg.Seed))
		shuffled := make([]string, len(names))
		for i, p := range perm {
			shuffled[i] = names[p]
		}
		names = shuffled
	}
	log := logger.WithFields(logrus.Fields{"input": cfg.Input, "conformers": len(names)})

	in := engine.Input{IDs: names}
	if cfg.Subset == 0 {
		d, ok, err := report.LoadCachedRMSD(cfg.Output, names)
		if err != nil {
			log.WithError(err).Warn("ignoring cached RMSD table")
		} else if ok {
			log.Info("reusing cached RMSD table")
			in.D = d
		}
	}
	if in.D == nil {
		if in.Frames, err = loadFrames(cfg, names); err != nil {
			return err
		}
	}
	if cfg.Energy.Path != "" {
		if in.Energies, err = report.LoadEnergies(cfg.Energy.Path, cfg.Energy.Label); err != nil {
			return err
		}
	}

	eng, err := engine.New(ec, engine.NewLogObserver(logger))
	if err != nil {
		return err
	}
	var res *engine.Result
	if cfg.Subset > 0 {
		res, err = eng.RunSubset(in, cfg.Subset)
	} else {
		res, err = eng.Run(in)
	}
	if err != nil {
		return err
	}

	opts := []report.Option{report.WithLogger(logger)}
	if cfg.CopyConformers {
		opts = append(opts, report.WithConformerCopies(cfg.Input))
	}
	if err = report.Save(cfg.Output, res, opts...); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"run_id":   res.RunID.String(),
		"clusters": len(res.Representatives),
		"output":   cfg.Output,
	}).Info("clustering complete")

	return printClusters(cmd, res)
}

func loadFrames(cfg config.Config, names []string) ([]rmsd.Frame, error) {
	return conformer.LoadSet(cfg.Input, names,
		conformer.WithHydrogens(cfg.KeepHydrogens),
		conformer.WithHETATM(cfg.HETATM))
}

func printClusters(cmd *cobra.Command, res *engine.Result) error {
	sizes := make(map[int]int)
	for _, c := range res.Partition.Clusters() {
		sizes[c.Label] = c.Size()
	}
	w := cmd.OutOrStdout()
	for k, r := range res.Representatives {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", partition.ClusterName(k), res.IDs[r], sizes[res.Partition.Label(r)]); err != nil {
			return err
		}
	}

	return nil
}

