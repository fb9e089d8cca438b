package serve

import (
	"fmt"

	"trainingcopilot/models"
)

// widgetScript renders the floating widget bootstrap the bookmarklet
// injects into the page. It only captures and displays; the extraction
// and answering logic stays server-side in the pipeline.
func widgetScript(opts models.Options) string {
	bg, fg := "#ffffff", "#1a1a1a"
	if opts.Theme == models.ThemeDark {
		bg, fg = "#1a1a1a", "#f0f0f0"
	}
	return fmt.Sprintf(widgetTemplate, bg, fg, opts.Port)
}

const widgetTemplate = `(function () {
  if (document.getElementById('tc-widget')) { return; }
  var base = 'http://localhost:%[3]d';
  var div = document.createElement('div');
  div.id = 'tc-widget';
  div.style.cssText = 'position:fixed;top:20px;right:20px;z-index:99999;' +
    'background:%[1]s;color:%[2]s;padding:16px;border:2px solid #007bff;' +
    'border-radius:10px;width:280px;font-family:sans-serif;font-size:14px;';
  div.innerHTML = '<strong>Training Copilot</strong>' +
    '<p id="tc-status">Ready</p>' +
    '<button id="tc-record" style="width:100%%;padding:8px;">Record this page</button>';
  document.body.appendChild(div);
  var status = document.getElementById('tc-status');
  document.getElementById('tc-record').onclick = function () {
    status.textContent = 'Processing…';
    fetch(base + '/api/capture', {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      body: JSON.stringify({
        url: location.href,
        title: document.title,
        content: document.body.innerText.slice(0, 5000)
      })
    }).then(function (r) { return r.json(); }).then(function (data) {
      status.textContent = 'Recorded. Pages: ' + data.count;
    }).catch(function () {
      status.textContent = 'Error';
    });
  };
})();
`
