package gravatar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURL(t *testing.T) {
	// md5("myemailaddress@example.com"), the reference hash from Gravatar's docs
	want := "//www.gravatar.com/avatar/0bc83cb571cd1c50ba6f3e8a78ef1346?d=mm&r=pg&s=200"

	assert.Equal(t, want, URL("MyEmailAddress@example.com "))
	assert.Equal(t, URL("a@x.com"), URL("A@X.com"))
}
