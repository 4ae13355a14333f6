package export

// Prepare validates req and computes the output dimensions. The aspect ratio
// in the settings, when recognized, overrides the requested height.
func Prepare(req Request) (PrepareResponse, error) {
	if len(req.Players) == 0 {
		return PrepareResponse{Success: false, Message: "No players in lineup"}, ErrNoPlayers
	}
	req = req.WithDefaults()

	width, height := req.Width, req.Height
	switch req.Settings.AspectRatio {
	case AspectSquare:
		height = width
	case AspectPortrait:
		height = int(float64(width) * 1.25)
	case AspectLandscape:
		height = int(float64(width) * 0.75)
	}

	return PrepareResponse{
		Success:  true,
		Message:  "Ready for export",
		Metadata: &Metadata{Width: width, Height: height, Format: req.Format},
	}, nil
}
