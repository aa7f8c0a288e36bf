package namestesting

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/datatrails/go-datatrails-common/logger"
)

type TestContext struct {
	Log logger.Logger
	T   *testing.T
	rng *rand.Rand
}

type TestConfig struct {
	// The RNG is seeded from Seed. Keep it fixed so generated names are the
	// same from run to run.
	Seed            int64
	TestLabelPrefix string
}

func NewTestContext(t *testing.T, cfg TestConfig) TestContext {
	logger.New("NOOP")
	return TestContext{
		T:   t,
		Log: logger.Sugar.WithServiceName(cfg.TestLabelPrefix),
		rng: rand.New(rand.NewSource(cfg.Seed)),
	}
}

func (c *TestContext) GetLog() logger.Logger { return c.Log }

const nameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_."

// RandomNames returns n distinct names of 1..maxLen bytes. Names never
// contain NUL, so no two of them collide under zero padding.
func (c *TestContext) RandomNames(n int, maxLen int) []string {
	if maxLen < 1 {
		c.T.Fatalf("maxLen must be positive, got %d", maxLen)
	}
	seen := make(map[string]bool, n)
	names := make([]string, 0, n)
	for len(names) < n {
		b := make([]byte, 1+c.rng.Intn(maxLen))
		for i := range b {
			b[i] = nameAlphabet[c.rng.Intn(len(nameAlphabet))]
		}
		if seen[string(b)] {
			continue
		}
		seen[string(b)] = true
		names = append(names, string(b))
	}
	return names
}

// SharedPrefixNames returns n distinct names that all begin with prefix, the
// shape produced by numbered bones ("Bone_000", "Bone_001", ...).
func SharedPrefixNames(prefix string, n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("%s%03d", prefix, i)
	}
	return names
}

// SkeletonNames is a small, realistic bone name set.
func SkeletonNames() []string {
	return []string{
		"Origin", "Waist", "Hips", "Spine", "Chest", "Neck", "Head",
		"Shoulder_L", "Arm_L", "Elbow_L", "Hand_L",
		"Shoulder_R", "Arm_R", "Elbow_R", "Hand_R",
		"Leg_L", "Knee_L", "Foot_L", "Leg_R", "Knee_R", "Foot_R",
	}
}
