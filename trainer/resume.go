package trainer

import "github.com/evoaug/evoaug/robust"

// Resume loads wrapper weights from a checkpoint before training
// continues. A missing checkpoint is reported, not fatal, so a first run
// and a resumed run share the same command line.
func Resume(rm *robust.RobustModel, resume *bool, dstmodel *string) {
	if resume != nil && *resume && dstmodel != nil {
		err := rm.ReadCheckpointFromFile(*dstmodel)
		if err != nil {
			println(err.Error())
		}
	}
}
