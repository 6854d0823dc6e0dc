package scaler

// Resample box-filters gray onto a tw x th grid. Each output cell is the
// truncated mean of the source samples inside its row and column spans;
// cells whose spans are empty are 0.
func Resample(gray *Gray, tw, th int) (*Grid, error) {
	if tw < 0 || th < 0 {
		return nil, invalidInput("negative target dimensions %dx%d", tw, th)
	}
	if len(gray.Pix) != gray.Width*gray.Height {
		return nil, invalidInput("grayscale data is %d bytes, want %d for %dx%d", len(gray.Pix), gray.Width*gray.Height, gray.Width, gray.Height)
	}

	grid := newGrid(tw, th)
	if tw == 0 || th == 0 {
		return grid, nil
	}

	rows := PartitionAxis(gray.Height, th)
	cols := PartitionAxis(gray.Width, tw)

	out := 0
	for _, r := range rows {
		for _, c := range cols {
			grid.Data[out] = boxMean(gray, r, c)
			out++
		}
	}
	return grid, nil
}

func boxMean(gray *Gray, r, c Span) byte {
	if r.Empty() || c.Empty() {
		return 0
	}

	var sum uint64
	for i := r.Start; i < r.End; i++ {
		row := i * gray.Width
		for j := c.Start; j < c.End; j++ {
			sum += uint64(gray.at(row + j))
		}
	}
	return byte(sum / uint64(r.Len()*c.Len()))
}

// Scale reduces img to grayscale and resamples it to tw x th.
func Scale(img *Image, tw, th int) (*Grid, error) {
	gray, err := GrayImage(img)
	if err != nil {
		return nil, err
	}
	return Resample(gray, tw, th)
}
