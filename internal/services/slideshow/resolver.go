package slideshow

// Resolve возвращает номер слайда для значения: количество порогов,
// пройденных подряд с начала списка. Просмотр останавливается на первом
// пороге, который значение не достигло, поэтому для неотсортированного
// списка более поздние пороги не учитываются. NaN не проходит ни один порог.
func Resolve(value float64, thresholds []float64) int {
	slide := 0
	for i, threshold := range thresholds {
		if !(value >= threshold) {
			break
		}
		slide = i + 1
	}
	return slide
}
