package integrator

import (
	"errors"
	"testing"
)

func TestPartition(t *testing.T) {
	tests := []struct {
		name    string
		n       uint64
		workers int
		ranges  [][2]uint64
	}{
		{
			name:    "Single worker",
			n:       4,
			workers: 1,
			ranges:  [][2]uint64{{0, 4}},
		},
		{
			name:    "Remainder goes to first workers",
			n:       8,
			workers: 3,
			ranges:  [][2]uint64{{0, 3}, {3, 6}, {6, 8}},
		},
		{
			name:    "More workers than subintervals",
			n:       1,
			workers: 4,
			ranges:  [][2]uint64{{0, 1}, {1, 1}, {1, 1}, {1, 1}},
		},
		{
			name:    "Even split",
			n:       9,
			workers: 3,
			ranges:  [][2]uint64{{0, 3}, {3, 6}, {6, 9}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := Partition(tt.n, tt.workers)
			if err != nil {
				t.Fatalf("Partition(%d, %d) error = %v", tt.n, tt.workers, err)
			}
			if len(tasks) != len(tt.ranges) {
				t.Fatalf("Partition(%d, %d) returned %d tasks, want %d", tt.n, tt.workers, len(tasks), len(tt.ranges))
			}
			for i, task := range tasks {
				if task.Index != i {
					t.Errorf("task %d has index %d", i, task.Index)
				}
				if task.Start != tt.ranges[i][0] || task.End != tt.ranges[i][1] {
					t.Errorf("task %d = [%d, %d), want [%d, %d)", i, task.Start, task.End, tt.ranges[i][0], tt.ranges[i][1])
				}
				if task.Step != 1.0/float64(tt.n) {
					t.Errorf("task %d step = %v, want %v", i, task.Step, 1.0/float64(tt.n))
				}
			}
		})
	}
}

func TestPartitionCoversRange(t *testing.T) {
	for n := uint64(1); n <= 40; n++ {
		for workers := 1; workers <= 12; workers++ {
			tasks, err := Partition(n, workers)
			if err != nil {
				t.Fatalf("Partition(%d, %d) error = %v", n, workers, err)
			}

			var next, total uint64
			for i, task := range tasks {
				if task.Start != next {
					t.Fatalf("Partition(%d, %d): task %d starts at %d, want %d", n, workers, i, task.Start, next)
				}
				if task.End < task.Start {
					t.Fatalf("Partition(%d, %d): task %d has end %d before start %d", n, workers, i, task.End, task.Start)
				}
				size := task.Len()
				if size != n/uint64(workers) && size != n/uint64(workers)+1 {
					t.Errorf("Partition(%d, %d): task %d has %d subintervals", n, workers, i, size)
				}
				total += size
				next = task.End
			}
			if next != n || total != n {
				t.Errorf("Partition(%d, %d) covers [0, %d) with %d subintervals, want [0, %d)", n, workers, next, total, n)
			}
		}
	}
}

func TestPartitionInvalidArgument(t *testing.T) {
	tests := []struct {
		name    string
		n       uint64
		workers int
	}{
		{"Zero subintervals", 0, 4},
		{"Zero workers", 10, 0},
		{"Negative workers", 10, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := Partition(tt.n, tt.workers)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("Partition(%d, %d) error = %v, want ErrInvalidArgument", tt.n, tt.workers, err)
			}
			if tasks != nil {
				t.Errorf("Partition(%d, %d) returned tasks on error", tt.n, tt.workers)
			}
		})
	}
}
