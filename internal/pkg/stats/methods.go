package stats

// SourcesProcessedIncr increments the SourcesProcessed counter by 1.
func SourcesProcessedIncr() {
	if !ready() {
		return
	}

	globalStats.SourcesProcessed.incr(1)
	globalPromStats.sourcesProcessed.WithLabelValues(job, hostname).Inc()
}

// SourcesProcessedGet returns the current value of the SourcesProcessed counter.
func SourcesProcessedGet() uint64 {
	if !ready() {
		return 0
	}

	return globalStats.SourcesProcessed.get()
}

// LinksExtractedIncr increments the LinksExtracted counter by the given step.
func LinksExtractedIncr(step uint64) {
	if !ready() {
		return
	}

	globalStats.LinksExtracted.incr(step)
	globalPromStats.linksExtracted.WithLabelValues(job, hostname).Add(float64(step))
}

// LinksExtractedGet returns the current value of the LinksExtracted counter.
func LinksExtractedGet() uint64 {
	if !ready() {
		return 0
	}

	return globalStats.LinksExtracted.get()
}

// URLsCheckedIncr increments the URLsChecked counter by 1.
func URLsCheckedIncr() {
	if !ready() {
		return
	}

	globalStats.URLsChecked.incr(1)
	globalPromStats.urlsChecked.WithLabelValues(job, hostname).Inc()
}

// URLsCheckedGet returns the current value of the URLsChecked counter.
func URLsCheckedGet() uint64 {
	if !ready() {
		return 0
	}

	return globalStats.URLsChecked.get()
}

// LinksOKIncr increments the LinksOK counter by 1.
func LinksOKIncr() {
	if !ready() {
		return
	}

	globalStats.LinksOK.incr(1)
	globalPromStats.linksOK.WithLabelValues(job, hostname).Inc()
}

// LinksOKGet returns the current value of the LinksOK counter.
func LinksOKGet() uint64 {
	if !ready() {
		return 0
	}

	return globalStats.LinksOK.get()
}

// LinksBrokenIncr increments the LinksBroken counter by 1.
func LinksBrokenIncr() {
	if !ready() {
		return
	}

	globalStats.LinksBroken.incr(1)
	globalPromStats.linksBroken.WithLabelValues(job, hostname).Inc()
}

// LinksBrokenGet returns the current value of the LinksBroken counter.
func LinksBrokenGet() uint64 {
	if !ready() {
		return 0
	}

	return globalStats.LinksBroken.get()
}

// CheckErrorsIncr increments the CheckErrors counter by 1.
func CheckErrorsIncr() {
	if !ready() {
		return
	}

	globalStats.CheckErrors.incr(1)
	globalPromStats.checkErrors.WithLabelValues(job, hostname).Inc()
}

// CheckErrorsGet returns the current value of the CheckErrors counter.
func CheckErrorsGet() uint64 {
	if !ready() {
		return 0
	}

	return globalStats.CheckErrors.get()
}

// LinksSkippedIncr increments the LinksSkipped counter by 1.
func LinksSkippedIncr() {
	if !ready() {
		return
	}

	globalStats.LinksSkipped.incr(1)
	globalPromStats.linksSkipped.WithLabelValues(job, hostname).Inc()
}

// LinksSkippedGet returns the current value of the LinksSkipped counter.
func LinksSkippedGet() uint64 {
	if !ready() {
		return 0
	}

	return globalStats.LinksSkipped.get()
}
