package benchmark

// Aggregate reduces per-file timings to mean, min and max throughput.
// Unmeasurable files are counted but left out of the statistics; if no file
// was measurable the phase itself is unmeasurable.
func Aggregate(files []FileTiming) PhaseStats {
	stats := PhaseStats{Files: files}

	var sum float64
	for _, ft := range files {
		if ft.Unmeasurable {
			stats.Unmeasured++
			continue
		}
		if stats.Measured == 0 || ft.Throughput < stats.Min {
			stats.Min = ft.Throughput
		}
		if stats.Measured == 0 || ft.Throughput > stats.Max {
			stats.Max = ft.Throughput
		}
		sum += ft.Throughput
		stats.Measured++
	}

	if stats.Measured == 0 {
		stats.Unmeasurable = true
		return stats
	}
	stats.Mean = sum / float64(stats.Measured)
	return stats
}
