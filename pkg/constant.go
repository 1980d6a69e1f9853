package pkg

// enum of edge_weight_type
type EdgeWeightType uint8

const (
	EXPLICIT EdgeWeightType = iota
	EUC_2D
	UNKNOWN_EDGE_WEIGHT
)

const (
	DIMENSION_KEY        = "DIMENSION"
	CAPACITY_KEY         = "CAPACITY"
	EDGE_WEIGHT_TYPE_KEY = "EDGE_WEIGHT_TYPE"

	EDGE_WEIGHT_SECTION = "EDGE_WEIGHT_SECTION"
	NODE_COORD_SECTION  = "NODE_COORD_SECTION"
	DEMAND_SECTION      = "DEMAND_SECTION"

	INSTANCE_FILE_EXT = ".vrp"
	SNAPSHOT_FILE_EXT = ".vrp.bz2"
)

const (
	// number of mandatory header attributes (DIMENSION, CAPACITY, EDGE_WEIGHT_TYPE)
	NUM_HEADER_ATTRIBUTES = 3
)

func GetEdgeWeightType(edgeWeightType string) EdgeWeightType {
	switch edgeWeightType {
	case "EXPLICIT":
		return EXPLICIT
	case "EUC_2D":
		return EUC_2D
	default:
		return UNKNOWN_EDGE_WEIGHT
	}
}

func (t EdgeWeightType) String() string {
	switch t {
	case EXPLICIT:
		return "EXPLICIT"
	case EUC_2D:
		return "EUC_2D"
	default:
		return "UNKNOWN"
	}
}
