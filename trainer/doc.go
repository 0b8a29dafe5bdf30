// Package trainer provides high-level training orchestration for robust
// models. It manages epoch loops over datasets, validation, best-model
// checkpointing and resuming, for both the augmented pre-training phase
// and the fine-tuning phase.
package trainer
