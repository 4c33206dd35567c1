package minio

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.reader.Read(p)
	if n > 0 {
		pr.bytesRead += int64(n)
		if pr.onProgress != nil {
			pr.onProgress(pr.bytesRead)
		}
	}
	return n, err
}
