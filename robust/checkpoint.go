package robust

import "compress/lzw"
import "encoding/json"
import "io"
import "os"

import "github.com/pkg/errors"

// WriteCheckpointToFile writes the wrapped model weights to an
// lzw-compressed checkpoint file.
func (rm *RobustModel) WriteCheckpointToFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return errors.Wrap(err, "creating checkpoint")
	}
	err = rm.WriteCheckpoint(file)
	file.Close()
	return err
}

// WriteCheckpoint writes the wrapped model weights to a writer.
func (rm *RobustModel) WriteCheckpoint(w io.Writer) error {
	lw := lzw.NewWriter(w, lzw.LSB, 8)
	if err := json.NewEncoder(lw).Encode(rm.Model.Weights()); err != nil {
		return errors.Wrap(err, "encoding checkpoint")
	}
	return lw.Close()
}

// ReadCheckpointFromFile restores the wrapped model weights from an
// lzw-compressed checkpoint file. The wrapper keeps its augmentation list
// and policy; only the model parameters change.
func (rm *RobustModel) ReadCheckpointFromFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "opening checkpoint")
	}
	err = rm.ReadCheckpoint(file)
	file.Close()
	return err
}

// ReadCheckpoint restores the wrapped model weights from a reader.
func (rm *RobustModel) ReadCheckpoint(r io.Reader) error {
	lr := lzw.NewReader(r, lzw.LSB, 8)
	defer lr.Close()
	var weights []float32
	if err := json.NewDecoder(lr).Decode(&weights); err != nil {
		return errors.Wrap(err, "decoding checkpoint")
	}
	dst := rm.Model.Weights()
	if len(weights) != len(dst) {
		return errors.Errorf("checkpoint has %d weights, model has %d", len(weights), len(dst))
	}
	copy(dst, weights)
	return nil
}
