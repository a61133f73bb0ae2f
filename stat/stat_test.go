package stat

import (
	"bytes"
	"testing"

	"github.com/revelaction/wsdindex/index"
	sent "github.com/revelaction/wsdindex/sentence"
)

func TestMean(t *testing.T) {
	tests := []struct {
		counts []int
		want   float64
	}{
		{[]int{2, 4, 3}, 3.0},
		{[]int{1, 2}, 1.5},
		{[]int{1, 1, 2}, 1.33},
		{[]int{2, 2, 1}, 1.67},
		{nil, 0},
	}

	for _, tt := range tests {
		if got := Mean(tt.counts); got != tt.want {
			t.Errorf("Mean(%v) = %v, want %v", tt.counts, got, tt.want)
		}
	}
}

func TestAggregate(t *testing.T) {
	senseKeys := index.New()
	for _, id := range []string{"s1", "s2"} {
		senseKeys.Add("a%1:00:00::", id)
	}
	for _, id := range []string{"s1", "s2", "s3", "s4"} {
		senseKeys.Add("b%1:00:00::", id)
	}
	for _, id := range []string{"s1", "s2", "s3"} {
		senseKeys.Add("c%1:00:00::", id)
	}

	instances := sent.Instances{
		"s1": {Id: "s1", Tokens: make([]sent.Token, 3)},
		"s2": {Id: "s2", Tokens: make([]sent.Token, 2)},
	}

	hdl := NewHandler()
	hdl.Aggregate(instances, senseKeys, index.New())
	stats := hdl.Get()

	if stats.SenseKey.NumKeys != 3 || stats.SenseKey.SentencesPerKeyMean != 3.0 {
		t.Errorf("sensekey stats = %+v", stats.SenseKey)
	}

	if stats.Synset.NumKeys != 0 || stats.Synset.SentencesPerKeyMean != 0 {
		t.Errorf("synset stats = %+v", stats.Synset)
	}

	if stats.NumInstances != 2 || stats.NumTokens != 5 {
		t.Errorf("stats = %+v", stats)
	}

	var buf bytes.Buffer
	if err := stats.Fprint(&buf); err != nil {
		t.Fatal(err)
	}

	want := "Total number of instances: 2\nstats for sensekeys: #3 avg of 3.00\nstats for synsets: #0 avg of 0.00\n"
	if buf.String() != want {
		t.Errorf("Fprint() = %q, want %q", buf.String(), want)
	}
}
