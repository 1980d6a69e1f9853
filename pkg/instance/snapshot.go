package instance

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/dsnet/compress/bzip2"
	da "github.com/lintang-b-s/cvrp/pkg/datastructure"
	"github.com/lintang-b-s/cvrp/pkg/util"
)

/*
WriteSnapshot stores a loaded instance as bzip2-compressed text:

	<name>
	<dimension> <capacity> <edge weight type>
	<demand of node i>                  (dimension lines)
	<cost[i][0]> ... <cost[i][i-1]>     (rows 1..dimension-1)

ReadSnapshot restores it without re-deriving any cost.
*/
func WriteSnapshot(inst *Instance, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	return writeSnapshot(inst, f)
}

// writeSnapshot compresses inst into out and closes out. A failed close is returned
// unless an earlier error already was.
func writeSnapshot(inst *Instance, out io.WriteCloser) (err error) {
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	bz, err := bzip2.NewWriter(out, &bzip2.WriterConfig{})
	if err != nil {
		return err
	}

	w := bufio.NewWriter(bz)

	fmt.Fprintf(w, "%s\n", strconv.Quote(inst.name))
	fmt.Fprintf(w, "%d %d %s\n", inst.numNodes, inst.capacity, strconv.Quote(inst.edgeWeightType))

	for _, d := range inst.demand {
		fmt.Fprintf(w, "%s\n", strconv.FormatFloat(d, 'f', -1, 64))
	}

	for i := 1; i < inst.numNodes; i++ {
		for j := 0; j < i; j++ {
			fmt.Fprintf(w, "%d", inst.costs.Get(i, j))
			if j < i-1 {
				fmt.Fprintf(w, " ")
			}
		}
		fmt.Fprintf(w, "\n")
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return bz.Close()
}

func ReadSnapshot(filename string) (*Instance, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, newFileNotFoundError(filename, err)
	}
	defer f.Close()

	bz, err := bzip2.NewReader(f, nil)
	if err != nil {
		return nil, err
	}
	defer bz.Close()

	br := bufio.NewReader(bz)

	line, err := util.ReadLine(br)
	if err != nil {
		return nil, err
	}
	name, err := strconv.Unquote(line)
	if err != nil {
		return nil, fmt.Errorf("snapshot %s: bad name line: %w", filename, err)
	}

	line, err = util.ReadLine(br)
	if err != nil {
		return nil, err
	}
	tokens := strings.SplitN(line, " ", 3)
	if len(tokens) != 3 {
		return nil, fmt.Errorf("snapshot %s: expected 3 fields, got %d", filename, len(tokens))
	}
	numNodes, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, err
	}
	if numNodes <= 0 || numNodes > math.MaxInt/numNodes {
		return nil, fmt.Errorf("snapshot %s: invalid dimension %d", filename, numNodes)
	}
	capacity, err := strconv.Atoi(tokens[1])
	if err != nil {
		return nil, err
	}
	edgeWeightType, err := strconv.Unquote(tokens[2])
	if err != nil {
		return nil, err
	}

	demand := make([]float64, numNodes)
	for i := 0; i < numNodes; i++ {
		line, err = util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		demand[i], err = util.StringToFloat64(line)
		if err != nil {
			return nil, err
		}
	}

	costs := da.NewCostMatrix(numNodes)
	for i := 1; i < numNodes; i++ {
		line, err = util.ReadLine(br)
		if err != nil {
			return nil, err
		}
		tokens = strings.Fields(line)
		if len(tokens) != i {
			return nil, fmt.Errorf("snapshot %s: row %d: expected %d costs, got %d", filename, i, i, len(tokens))
		}
		for j, token := range tokens {
			cost, err := strconv.Atoi(token)
			if err != nil {
				return nil, err
			}
			costs.SetSymmetric(i, j, cost)
		}
	}

	return NewInstance(name, numNodes, capacity, edgeWeightType, demand, costs), nil
}
