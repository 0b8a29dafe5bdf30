// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestDefaultsBuildFullAugmentList(t *testing.T) {
	viper.Reset()
	SetDefaults()
	c := New()

	list, err := c.Augments()
	if err != nil {
		t.Fatalf("augments: %v", err)
	}
	// deletion, rc, insertion, translocation, mutation, noise (inversion off)
	if len(list) != 6 {
		t.Errorf("default augment list has %d entries, want 6", len(list))
	}
	if c.Policy.MaxAugsPerSeq != 2 || !c.Policy.HardAug || c.Policy.InferenceAug {
		t.Errorf("bad default policy: %+v", c.Policy)
	}
}

func TestDisablingOps(t *testing.T) {
	viper.Reset()
	SetDefaults()
	viper.Set("deletion.enable", false)
	viper.Set("noise.enable", false)
	c := New()

	list, err := c.Augments()
	if err != nil {
		t.Fatalf("augments: %v", err)
	}
	if len(list) != 4 {
		t.Errorf("augment list has %d entries, want 4", len(list))
	}
}

func TestInvalidParametersSurface(t *testing.T) {
	viper.Reset()
	SetDefaults()
	viper.Set("mutation.frac", 1.5)
	c := New()

	if _, err := c.Augments(); err == nil {
		t.Errorf("invalid mutation fraction accepted")
	}
}
