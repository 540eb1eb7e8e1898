//go:build amd64

package codec

func init() {
	hasWordEngine = true
}
