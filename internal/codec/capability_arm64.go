//go:build arm64

package codec

func init() {
	hasWordEngine = true
}
