package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCPUSegment(t *testing.T) {
	loadAvg := 0.5
	c := cpuInfo{Load1: &loadAvg, FreqMHz: 2400}

	assert.Equal(t, "CPU 50% 2.4GHz", cpuSegment(c))
}

func TestCPUSegment_UnknownLoad(t *testing.T) {
	c := cpuInfo{FreqMHz: defaultFreqMHz}

	assert.Equal(t, "CPU --% 1.0GHz", cpuSegment(c))
}

func TestRecSegment(t *testing.T) {
	assert.Equal(t, "REC", recSegment(true))
	assert.Empty(t, recSegment(false))
}
